package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"hiring-flow-backend/config"
)

var Client *minio.Client

func NewClient() (*minio.Client, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return minioClient, nil
}

// EnsureBuckets creates the document buckets when they do not exist yet.
func EnsureBuckets(ctx context.Context, client *minio.Client) error {
	buckets := []string{
		config.Conf.S3.AssessmentBucket,
		config.Conf.S3.BackgroundBucket,
	}
	for _, bucketName := range buckets {
		exists, err := client.BucketExists(ctx, bucketName)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
		if err != nil {
			return err
		}
	}
	return nil
}
