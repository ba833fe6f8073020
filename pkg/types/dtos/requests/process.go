package request

// OCRBody는 OCR 처리 요청 본문입니다.
// Image는 파일 경로, 이미지가 들어 있는 디렉터리, http(s) URL 중 하나이며
// ImageData로 base64 인라인 이미지를 대신 전달할 수 있습니다.
type OCRBody struct {
	Image     string   `json:"image"`
	ImageData string   `json:"imageData,omitempty"`
	Providers []string `json:"providers"`
}

// TranscriptionBody는 전사 처리 요청 본문입니다
type TranscriptionBody struct {
	AudioFile string   `json:"audioFile" validate:"required"`
	Providers []string `json:"providers"`
}

// TranslationBody는 번역 처리 요청 본문입니다
type TranslationBody struct {
	Text           string   `json:"text" validate:"required,max=10000"`
	Providers      []string `json:"providers"`
	SourceLanguage string   `json:"sourceLanguage,omitempty" validate:"max=16"`
	TargetLanguage string   `json:"targetLanguage,omitempty" validate:"max=16"`
}
