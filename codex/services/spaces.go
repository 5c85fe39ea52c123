package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpacesService serves the card art: public CDN URLs for embed thumbnails and
// raw object fetches for the batch compositor.
type SpacesService struct {
	client   *s3.Client
	bucket   string
	region   string
	cardRoot string
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, cardRoot string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	return &SpacesService{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
		cardRoot: strings.Trim(cardRoot, "/"),
	}, nil
}

// CardImageKey is the object key of one piece of card art. The artificial id
// doubles as the asset name.
func (s *SpacesService) CardImageKey(official bool, artificialID string) string {
	origin := "unofficial"
	if official {
		origin = "official"
	}
	return fmt.Sprintf("%s/%s/%s.jpg", s.cardRoot, origin, artificialID)
}

// CardImageURL returns the public CDN URL for one piece of card art.
func (s *SpacesService) CardImageURL(official bool, artificialID string) string {
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s",
		s.bucket, s.region, s.CardImageKey(official, artificialID))
}

// FetchCardImage downloads the raw art bytes for compositing.
func (s *SpacesService) FetchCardImage(ctx context.Context, official bool, artificialID string) ([]byte, error) {
	key := s.CardImageKey(official, artificialID)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card art %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read card art %s: %w", key, err)
	}
	return data, nil
}
