// Package deploy publishes the generated site to S3 behind CloudFront.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const defaultContentType = "application/octet-stream"

// DefaultPriceClass limits edge locations to North America and Europe.
const DefaultPriceClass = types.PriceClassPriceClass100

// ErrUnknownPriceClass is returned for a price class CloudFront does not offer.
var ErrUnknownPriceClass = errors.New("unknown CloudFront price class")

// Uploader is the subset of the S3 transfer manager used here.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// DistributionAPI is the subset of the CloudFront client used here.
type DistributionAPI interface {
	cloudfront.ListDistributionsAPIClient
	CreateDistribution(ctx context.Context, params *cloudfront.CreateDistributionInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateDistributionOutput, error)
}

// Deployer uploads a site directory and fronts the bucket with CloudFront.
type Deployer struct {
	uploader Uploader
	cdn      DistributionAPI
	now      func() time.Time

	priceClass types.PriceClass
}

// Option customises a Deployer.
type Option func(*Deployer)

// WithPriceClass sets the price class of distributions created by
// EnsureDistribution.
func WithPriceClass(pc types.PriceClass) Option {
	return func(d *Deployer) { d.priceClass = pc }
}

// ParsePriceClass maps a configured name such as "PriceClass_All" onto the
// CloudFront enum.
func ParsePriceClass(name string) (types.PriceClass, error) {
	for _, pc := range types.PriceClass("").Values() {
		if string(pc) == name {
			return pc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPriceClass, name)
}

// New builds a Deployer from the default AWS credential chain.
func New(ctx context.Context, opts ...Option) (*Deployer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS SDK config: %w", err)
	}
	return NewWithClients(manager.NewUploader(s3.NewFromConfig(cfg)), cloudfront.NewFromConfig(cfg), opts...), nil
}

// NewWithClients builds a Deployer from explicit clients.
func NewWithClients(uploader Uploader, cdn DistributionAPI, opts ...Option) *Deployer {
	d := &Deployer{uploader: uploader, cdn: cdn, now: time.Now, priceClass: DefaultPriceClass}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// UploadSite uploads every regular file under dir to bucket, keyed by its
// slash-separated path relative to dir. It returns the number of files sent.
func (d *Deployer) UploadSite(ctx context.Context, bucket, dir string) (int, error) {
	log.Info().Str("bucket", bucket).Str("dir", dir).Msg("starting deployment")

	var uploaded int
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		key, err := ObjectKey(dir, path)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer file.Close()

		_, err = d.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        file,
			ContentType: aws.String(ContentType(path)),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}

		uploaded++
		log.Debug().Str("key", key).Msgf("uploaded s3://%s/%s", bucket, key)
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("deploy: %w", err)
	}

	log.Info().Int("files", uploaded).Msg("deployment complete")
	return uploaded, nil
}

// ObjectKey returns the S3 key for path under root.
func ObjectKey(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// ContentType guesses the MIME type from the file extension.
func ContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return defaultContentType
}

// OriginDomain is the S3 origin hostname CloudFront uses for bucket.
func OriginDomain(bucket string) string {
	return fmt.Sprintf("%s.s3.amazonaws.com", bucket)
}

// FindDistribution returns the id of a distribution whose origin is bucket,
// or "" if there is none.
func (d *Deployer) FindDistribution(ctx context.Context, bucket string) (string, error) {
	want := OriginDomain(bucket)
	paginator := cloudfront.NewListDistributionsPaginator(d.cdn, &cloudfront.ListDistributionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("list CloudFront distributions: %w", err)
		}
		if page.DistributionList == nil {
			continue
		}
		for _, dist := range page.DistributionList.Items {
			if dist.Origins == nil {
				continue
			}
			for _, origin := range dist.Origins.Items {
				if aws.ToString(origin.DomainName) == want {
					return aws.ToString(dist.Id), nil
				}
			}
		}
	}
	return "", nil
}

// EnsureDistribution returns the distribution fronting bucket, creating one
// when none exists.
func (d *Deployer) EnsureDistribution(ctx context.Context, bucket string) (string, error) {
	id, err := d.FindDistribution(ctx, bucket)
	if err != nil {
		return "", err
	}
	if id != "" {
		log.Info().Str("bucket", bucket).Str("distribution", id).Msg("CloudFront distribution already exists")
		return id, nil
	}

	log.Info().Str("bucket", bucket).Str("price_class", string(d.priceClass)).Msg("creating CloudFront distribution")
	resp, err := d.cdn.CreateDistribution(ctx, &cloudfront.CreateDistributionInput{
		DistributionConfig: distributionConfig(bucket, fmt.Sprintf("portfolio-%d", d.now().Unix()), d.priceClass),
	})
	if err != nil {
		return "", fmt.Errorf("create CloudFront distribution: %w", err)
	}
	id = aws.ToString(resp.Distribution.Id)
	log.Info().
		Str("distribution", id).
		Str("domain", aws.ToString(resp.Distribution.DomainName)).
		Msg("created CloudFront distribution")
	return id, nil
}

func distributionConfig(bucket, callerReference string, priceClass types.PriceClass) *types.DistributionConfig {
	return &types.DistributionConfig{
		CallerReference: aws.String(callerReference),
		Comment:         aws.String("portfolio site served from s3://" + bucket),
		Enabled:         aws.Bool(true),
		DefaultCacheBehavior: &types.DefaultCacheBehavior{
			TargetOriginId:       aws.String(bucket),
			ViewerProtocolPolicy: types.ViewerProtocolPolicyRedirectToHttps,
			TrustedSigners:       &types.TrustedSigners{Enabled: aws.Bool(false), Quantity: aws.Int32(0)},
			ForwardedValues: &types.ForwardedValues{
				QueryString: aws.Bool(false),
				Cookies:     &types.CookiePreference{Forward: types.ItemSelectionNone},
			},
			MinTTL: aws.Int64(0),
		},
		Origins: &types.Origins{
			Quantity: aws.Int32(1),
			Items: []types.Origin{
				{
					Id:         aws.String(bucket),
					DomainName: aws.String(OriginDomain(bucket)),
					S3OriginConfig: &types.S3OriginConfig{
						OriginAccessIdentity: aws.String(""),
					},
				},
			},
		},
		PriceClass:        priceClass,
		DefaultRootObject: aws.String("index.html"),
		Restrictions: &types.Restrictions{
			GeoRestriction: &types.GeoRestriction{
				RestrictionType: types.GeoRestrictionTypeNone,
				Quantity:        aws.Int32(0),
			},
		},
		ViewerCertificate: &types.ViewerCertificate{
			CloudFrontDefaultCertificate: aws.Bool(true),
			MinimumProtocolVersion:       types.MinimumProtocolVersionTLSv12016,
			CertificateSource:            types.CertificateSourceCloudfront,
		},
	}
}
