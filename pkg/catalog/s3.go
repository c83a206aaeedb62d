package catalog

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// LoadURI reads a catalog from a local path or an s3://bucket/key URI.
func LoadURI(uri, region string) (*Catalog, error) {
	if strings.HasPrefix(uri, "s3://") {
		rest := strings.TrimPrefix(uri, "s3://")
		i := strings.Index(rest, "/")
		if i <= 0 || i+1 >= len(rest) {
			return nil, fmt.Errorf("invalid s3 uri %s: want s3://bucket/key", uri)
		}
		return LoadS3(rest[:i], rest[i+1:], region)
	}
	return Load(uri)
}

// LoadS3 fetches the catalog yaml from an s3 object.
func LoadS3(bucket, key, region string) (*Catalog, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:     &region,
		MaxRetries: aws.Int(3),
	}))
	svc := s3.New(sess)
	output, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()
	return Read(output.Body)
}
