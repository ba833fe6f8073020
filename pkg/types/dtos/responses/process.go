package response

// Process는 처리 요청에 대한 응답을 나타냅니다.
// Values는 정규 제공자 순서대로 평탄화된 표시 값 시퀀스이며,
// 길이는 선택된 제공자 수와 무관하게 작업 종류별로 고정됩니다.
type Process struct {
	Task   string   `json:"task"`
	Order  []string `json:"order"`  // 정규 제공자 순서
	Fields []string `json:"fields"` // 제공자당 필드 이름
	Values []string `json:"values"` // len(Order) * len(Fields)
}
