package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
	ConsumerGroup   string
}

type SMTPConfig struct {
	Sender     string
	Password   string
	SMTPServer string
	SMTPPort   int
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServiceName            string
	ServicePort            string
	MetricsPort            string
	Environment            string
	PostgreSQLConfig       PostgreSQLConfig
	JWTSecret              string
	KafkaConfig            KafkaConfig
	SMTPConfig             SMTPConfig
	TracingConfig          TracingConfig
	AuthServiceHost        string
	UniversityServiceHost  string
	CertificateServiceHost string
	UploadDir              string
	PdfDir                 string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServiceName: os.Getenv("SERVICE_NAME"),
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
			ConsumerGroup: os.Getenv("BROKER_CONSUMER_GROUP"),
		},
		SMTPConfig: SMTPConfig{
			Sender:     os.Getenv("SMTP_SENDER"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			SMTPServer: os.Getenv("SMTP_SERVER"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		AuthServiceHost:        os.Getenv("AUTH_SERVICE_HOST"),
		UniversityServiceHost:  os.Getenv("UNIVERSITY_SERVICE_HOST"),
		CertificateServiceHost: os.Getenv("CERTIFICATE_SERVICE_HOST"),
		UploadDir:              os.Getenv("UPLOAD_DIR"),
		PdfDir:                 os.Getenv("PDF_DIR"),
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.SMTPPort = smtpPort
	}

	return &conf
}
