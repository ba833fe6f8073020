package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string `mapstructure:"PORT"`
		AppName string `mapstructure:"APP_NAME"`
	}
	Gateway struct {
		URL    string `mapstructure:"GATEWAY_URL"`
		APIKey string `mapstructure:"GATEWAY_API_KEY"`
	}
	AWS struct {
		AccessKeyID      string `mapstructure:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey  string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
		Region           string `mapstructure:"AWS_REGION"`
		DynamoDBEndpoint string `mapstructure:"AWS_DYNAMODB_ENDPOINT"`
		Tables           struct {
			ResponseCache string `mapstructure:"AWS_DYNAMODB_TABLE_RESPONSE_CACHE"`
		}
		SQS struct {
			AuditQueueURL string `mapstructure:"AWS_SQS_AUDIT_QUEUE_URL"`
		}
	}
	Annotate struct {
		OutputDir string `mapstructure:"ANNOTATE_OUTPUT_DIR"`
		TempDir   string `mapstructure:"ANNOTATE_TEMP_DIR"`
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// loadConfig는 환경 변수를 로드하고 검증하는 내부 함수
func loadConfig() *EnvConfig {
	viper.SetConfigFile(".env")
	viper.ReadInConfig()
	viper.AutomaticEnv()

	// 필수 환경 변수 확인
	requiredEnvVars := []string{
		"PORT",
		"APP_NAME",
		"GATEWAY_URL",
	}

	missingVars := []string{}
	for _, envVar := range requiredEnvVars {
		if !viper.IsSet(envVar) {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		log.Fatalf("필수 환경 변수가 설정되지 않았습니다: %s", strings.Join(missingVars, ", "))
	}

	// 기본값 설정
	viper.SetDefault("AWS_DYNAMODB_TABLE_RESPONSE_CACHE", "sc-response-cache")
	viper.SetDefault("ANNOTATE_OUTPUT_DIR", "output/ocr")
	viper.SetDefault("ANNOTATE_TEMP_DIR", "/tmp")

	// 환경 변수 키-구조체 필드 매핑 정의
	config := &EnvConfig{}
	envMapping := map[string]*string{
		"PORT":                  &config.Server.Port,
		"APP_NAME":              &config.Server.AppName,
		"GATEWAY_URL":           &config.Gateway.URL,
		"GATEWAY_API_KEY":       &config.Gateway.APIKey,
		"AWS_ACCESS_KEY_ID":     &config.AWS.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY": &config.AWS.SecretAccessKey,
		"AWS_REGION":            &config.AWS.Region,
		"AWS_DYNAMODB_ENDPOINT": &config.AWS.DynamoDBEndpoint,

		"AWS_DYNAMODB_TABLE_RESPONSE_CACHE": &config.AWS.Tables.ResponseCache,
		"AWS_SQS_AUDIT_QUEUE_URL":           &config.AWS.SQS.AuditQueueURL,
		"ANNOTATE_OUTPUT_DIR":               &config.Annotate.OutputDir,
		"ANNOTATE_TEMP_DIR":                 &config.Annotate.TempDir,
	}

	// 필드에 환경 변수 값 매핑 - 문자열 필드
	for key, field := range envMapping {
		*field = viper.GetString(key)
	}

	return config
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		configInstance = loadConfig()
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}
