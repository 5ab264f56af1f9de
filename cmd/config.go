package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaHost             string
	KafkaOrderPlacedTopic string
	VIPDiscountRate       string
	SMTPAddr              string
	SMTPFrom              string
	SMTPRecipientDomain   string
	AdminIDs              string
}
