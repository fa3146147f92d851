package oss

import (
	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	minioClient *minio.Client
	publicHost  string
)

func InitMinio() error {
	endpoint := config.ConfigInfo.Minio.Endpoint
	if endpoint == "" {
		endpoint = "localhost:9002"
	}
	publicHost = config.ConfigInfo.Minio.PublicHost
	if publicHost == "" {
		publicHost = endpoint
	}

	hlog.Infof("Initializing MinIO client with endpoint: %s", endpoint)

	var err error
	minioClient, err = minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.ConfigInfo.Minio.AccessKeyId, config.ConfigInfo.Minio.SecretAccessKey, ""),
		Secure: config.ConfigInfo.Minio.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	hlog.Info("Connect Minio Success")
	return nil
}
