package cmd

// Config carries the environment-driven settings the application starts with.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	KafkaHost       string
	KafkaOrderTopic string
}
