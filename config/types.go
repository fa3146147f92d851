package config

type config struct {
	Mysql mysql `yaml:"mysql" mapstructure:"mysql"`
	Redis redis `yaml:"redis" mapstructure:"redis"`
	Minio minio `yaml:"minio" mapstructure:"minio"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyId     string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicHost      string `yaml:"public_host" mapstructure:"public_host"`
}
