package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "hiring-flow-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}

	err = s3client.EnsureBuckets(ctx, minioClient)
	if err != nil {
		log.WithError(err).Error("failed to ensure document buckets")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
