package oss

import (
	"context"
	"fmt"
	"strings"

	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
)

const (
	videoBucket   = "video"
	pictureBucket = "picture"
	location      = "us-east-1" // MinIO默认区域
)

// StoreResult 媒体入库结果
type StoreResult struct {
	Url      string
	Duration float64 // 单位秒 仅视频有效
}

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func objectUrl(bucketName, objectName string) string {
	return fmt.Sprintf("http://%s/%s/%s", publicHost, bucketName, objectName)
}

// StoreVideo 先探测时长再上传视频文件 记录持久化之前必须完成
func StoreVideo(ctx context.Context, localPath string, vid int64) (*StoreResult, error) {
	duration, err := utils.GetVideoDuration(localPath)
	if err != nil {
		return nil, err
	}
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return nil, err
	}
	objectName := fmt.Sprintf("video/%d/video.mp4", vid)
	_, err = minioClient.FPutObject(ctx, videoBucket, objectName, localPath, minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		hlog.Info(err)
		return nil, err
	}
	return &StoreResult{Url: objectUrl(videoBucket, objectName), Duration: duration}, nil
}

// StoreThumbnail 上传视频封面
func StoreThumbnail(ctx context.Context, localPath string, vid int64) (string, error) {
	if err := ensureBucket(ctx, pictureBucket); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("cover/%d/cover.jpg", vid)
	_, err := minioClient.FPutObject(ctx, pictureBucket, objectName, localPath, minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", err
	}
	return objectUrl(pictureBucket, objectName), nil
}

// Remove 按url删除对象 尽力而为 失败只上报不中断调用方
func Remove(ctx context.Context, url string) bool {
	if minioClient == nil {
		return false
	}
	bucketName, objectName, ok := parseObjectUrl(url)
	if !ok {
		hlog.Warnf("Cannot parse object url: %s", url)
		return false
	}
	if err := minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		hlog.Warnf("Failed to delete %s: %v", url, err)
		return false
	}
	return true
}

// parseObjectUrl 从 http://host/bucket/object 形式的url还原bucket和object
func parseObjectUrl(url string) (bucketName, objectName string, ok bool) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	parts := strings.SplitN(trimmed, "/", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
