package s3

import (
	"io"
	"log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	aws_s3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type AWSConfig struct {
	AccessKeyID     string
	AccessKeySecret string
	Region          string
}

func CreateSession(awsConfig AWSConfig) *session.Session {
	return session.Must(session.NewSession(&aws.Config{
		Region: aws.String(awsConfig.Region),
		Credentials: credentials.NewStaticCredentials(
			awsConfig.AccessKeyID,
			awsConfig.AccessKeySecret,
			"",
		),
	}))
}

func CreateS3Session(sess *session.Session) *aws_s3.S3 {
	return aws_s3.New(sess)
}

func UploadObject(bucket string, key string, sess *session.Session, body io.Reader, contentType string) error {
	uploader := s3manager.NewUploader(sess)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("failed to upload %q to %q: %v", key, bucket, err)
		return err
	}
	return nil
}

func DeleteObject(bucket string, key string, sess *session.Session) error {
	svc := CreateS3Session(sess)
	_, err := svc.DeleteObject(&aws_s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}
