package constants

import "testing"

func TestProviderOrder(t *testing.T) {
	tests := []struct {
		task  TaskKind
		count int
		first Provider
		last  Provider
	}{
		{TaskOCR, 6, ProviderAPI4AI, ProviderSentiSight},
		{TaskTranscription, 2, ProviderAzure, ProviderOpenAI},
		{TaskTranslation, 6, ProviderAnthropic, ProviderOpenAI},
	}

	for _, tt := range tests {
		t.Run(string(tt.task), func(t *testing.T) {
			order := ProviderOrder(tt.task)
			if len(order) != tt.count {
				t.Fatalf("순서 길이 = %d, 기대값 %d", len(order), tt.count)
			}
			if order[0] != tt.first || order[len(order)-1] != tt.last {
				t.Errorf("순서 = %v", order)
			}
		})
	}

	if ProviderOrder(TaskKind("SUMMARY")) != nil {
		t.Error("알 수 없는 작업의 순서는 nil이어야 합니다")
	}
}

func TestIsValidProvider(t *testing.T) {
	tests := []struct {
		task     TaskKind
		provider Provider
		want     bool
	}{
		{TaskOCR, ProviderAWS, true},
		{TaskOCR, ProviderOpenAI, false},
		{TaskTranscription, ProviderOpenAI, true},
		{TaskTranscription, ProviderGCP, false},
		{TaskTranslation, ProviderModernMT, true},
		{TaskTranslation, ProviderSentiSight, false},
	}

	for _, tt := range tests {
		if got := IsValidProvider(tt.task, tt.provider); got != tt.want {
			t.Errorf("IsValidProvider(%s, %s) = %v, 기대값 %v", tt.task, tt.provider, got, tt.want)
		}
	}
}
