package uploads

import (
	"fmt"
	"mime/multipart"
	"os"

	s3 "github.com/rahul12st/Manipal-Marketplace-backend/aws"

	"github.com/aws/aws-sdk-go/aws/session"
)

// S3Store keeps uploaded files in an S3 bucket instead of the local disk.
// Stored filenames follow the same field-millis-random contract as DiskStore.
type S3Store struct {
	Bucket string
	Suffix SuffixFunc

	sess *session.Session
}

func NewS3Store(bucket string) *S3Store {
	awsConfig := s3.AWSConfig{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AccessKeySecret: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Region:          os.Getenv("AWS_REGION"),
	}
	return &S3Store{
		Bucket: bucket,
		Suffix: UniqueSuffix,
		sess:   s3.CreateSession(awsConfig),
	}
}

func (s *S3Store) Save(fileHeader *multipart.FileHeader, fieldName string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	filename := fmt.Sprintf("%s-%s", fieldName, s.Suffix())
	if err := s3.UploadObject(s.Bucket, "uploads/"+filename, s.sess, file, contentType); err != nil {
		return "", err
	}
	return filename, nil
}

func (s *S3Store) Remove(filename string) error {
	return s3.DeleteObject(s.Bucket, "uploads/"+filename, s.sess)
}
