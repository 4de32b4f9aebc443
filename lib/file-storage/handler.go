package filestorage

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-flow-backend/config"
	"hiring-flow-backend/db"
	candidatestore "hiring-flow-backend/lib/candidate/store"
	s3client "hiring-flow-backend/s3"
)

type Provider interface {
	UploadAssessmentReport(ctx context.Context, candidateID string, file []byte, fileName string) (hMsg string, err error)
	GetAssessmentReport(ctx context.Context, candidateID string) (file []byte, fileName string, err error)
	UploadBackgroundCheckDocument(ctx context.Context, candidateID string, file []byte, fileName string) (hMsg string, err error)
	GetBackgroundCheckDocument(ctx context.Context, candidateID string) (file []byte, fileName string, err error)
	DeleteAssessmentReport(ctx context.Context, candidateID string) (hMsg string, err error)
	DeleteBackgroundCheckDocument(ctx context.Context, candidateID string) (hMsg string, err error)
	DeleteCandidateFiles(ctx context.Context, candidateID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:       db.DB,
		s3client: s3client.Client,
	}
}

type impl struct {
	db       *gorm.DB
	s3client *minio.Client
}

func (i impl) UploadAssessmentReport(ctx context.Context, candidateID string, file []byte, fileName string) (hMsg string, err error) {
	return i.upload(ctx, candidateID, file, fileName, config.Conf.S3.AssessmentBucket,
		"assessment_report_key", "assessment_report_name")
}

func (i impl) GetAssessmentReport(ctx context.Context, candidateID string) (file []byte, fileName string, err error) {
	rec, err := candidatestore.NewInstance(i.db).GetByID(candidateID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil || rec.AssessmentReportKey == "" {
		return nil, "", nil
	}
	file, err = i.getObject(ctx, config.Conf.S3.AssessmentBucket, rec.AssessmentReportKey)
	return file, rec.AssessmentReportName, err
}

func (i impl) UploadBackgroundCheckDocument(ctx context.Context, candidateID string, file []byte, fileName string) (hMsg string, err error) {
	return i.upload(ctx, candidateID, file, fileName, config.Conf.S3.BackgroundBucket,
		"background_check_document_key", "background_check_document_name")
}

func (i impl) GetBackgroundCheckDocument(ctx context.Context, candidateID string) (file []byte, fileName string, err error) {
	rec, err := candidatestore.NewInstance(i.db).GetByID(candidateID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil || rec.BackgroundCheckDocumentKey == "" {
		return nil, "", nil
	}
	file, err = i.getObject(ctx, config.Conf.S3.BackgroundBucket, rec.BackgroundCheckDocumentKey)
	return file, rec.BackgroundCheckDocumentName, err
}

func (i impl) DeleteAssessmentReport(ctx context.Context, candidateID string) (hMsg string, err error) {
	store := candidatestore.NewInstance(i.db)
	rec, err := store.GetByID(candidateID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "candidate not found", nil
	}
	return i.deleteDocument(ctx, candidateID, config.Conf.S3.AssessmentBucket, rec.AssessmentReportKey,
		"assessment_report_key", "assessment_report_name")
}

func (i impl) DeleteBackgroundCheckDocument(ctx context.Context, candidateID string) (hMsg string, err error) {
	store := candidatestore.NewInstance(i.db)
	rec, err := store.GetByID(candidateID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "candidate not found", nil
	}
	return i.deleteDocument(ctx, candidateID, config.Conf.S3.BackgroundBucket, rec.BackgroundCheckDocumentKey,
		"background_check_document_key", "background_check_document_name")
}

func (i impl) deleteDocument(ctx context.Context, candidateID, bucketName, key, keyColumn, nameColumn string) (hMsg string, err error) {
	if key == "" {
		return "no document uploaded", nil
	}
	err = i.s3client.RemoveObject(ctx, bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return "", err
	}
	return "", candidatestore.NewInstance(i.db).Update(candidateID, map[string]interface{}{
		keyColumn:  "",
		nameColumn: "",
	})
}

func (i impl) DeleteCandidateFiles(ctx context.Context, candidateID string) error {
	rec, err := candidatestore.NewInstance(i.db).GetByID(candidateID)
	if err != nil || rec == nil {
		return err
	}
	if rec.AssessmentReportKey != "" {
		err = i.s3client.RemoveObject(ctx, config.Conf.S3.AssessmentBucket, rec.AssessmentReportKey, minio.RemoveObjectOptions{})
		if err != nil {
			log.WithError(err).WithField("candidate_id", candidateID).Warn("failed to remove assessment report")
		}
	}
	if rec.BackgroundCheckDocumentKey != "" {
		err = i.s3client.RemoveObject(ctx, config.Conf.S3.BackgroundBucket, rec.BackgroundCheckDocumentKey, minio.RemoveObjectOptions{})
		if err != nil {
			log.WithError(err).WithField("candidate_id", candidateID).Warn("failed to remove background check document")
		}
	}
	return nil
}

func (i impl) upload(ctx context.Context, candidateID string, file []byte, fileName, bucketName, keyColumn, nameColumn string) (hMsg string, err error) {
	store := candidatestore.NewInstance(i.db)
	rec, err := store.GetByID(candidateID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "candidate not found", nil
	}
	if len(file) == 0 {
		return "file is empty", nil
	}

	key := path.Join(candidateID, uuid.NewString()+path.Ext(fileName))
	_, err = i.s3client.PutObject(ctx, bucketName, key, bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", err
	}
	return "", store.Update(candidateID, map[string]interface{}{
		keyColumn:  key,
		nameColumn: fileName,
	})
}

func (i impl) getObject(ctx context.Context, bucketName, key string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
