package publish

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aurochs-dev/aurochs/internal/errors"
	"github.com/aurochs-dev/aurochs/pkg/render"
	"github.com/aurochs-dev/aurochs/pkg/treefile"
)

// ContentType is set on every uploaded object.
const ContentType = "text/html; charset=utf-8"

// PutObjectAPI is the subset of the S3 client used by Publisher.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a Publisher.
type Options struct {
	Bucket       string
	Prefix       string
	CacheControl string
	Render       render.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes one uploaded document.
type Result struct {
	Source string
	Key    string
	Bytes  int
	ETag   string
}

// URI returns the s3:// location of the object.
func (r Result) URI(bucket string) string {
	return "s3://" + bucket + "/" + r.Key
}

// Publisher renders tree documents and uploads them.
type Publisher struct {
	client   PutObjectAPI
	opts     Options
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates a Publisher.
func New(client PutObjectAPI, opts Options) *Publisher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client:   client,
		opts:     opts,
		renderer: render.NewRenderer(opts.Render),
		logger:   logger,
	}
}

// NewClient creates an S3 client from the default AWS credential chain.
// An empty region keeps the region from the environment.
func NewClient(ctx context.Context, region string) (*s3.Client, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, errors.New(errors.CodePublish).WithDetail("loading AWS configuration").Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}

// Key returns the object key for the document at source.
func (p *Publisher) Key(source string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return path.Join(p.opts.Prefix, name+".html")
}

// Publish renders and uploads each document in order. It stops at the
// first failure and returns the results uploaded so far.
func (p *Publisher) Publish(ctx context.Context, sources ...string) ([]Result, error) {
	if p.opts.Bucket == "" {
		return nil, errors.New(errors.CodePublish).WithDetail("no bucket configured")
	}

	results := make([]Result, 0, len(sources))
	for _, source := range sources {
		res, err := p.publishOne(ctx, source)
		if err != nil {
			return results, err
		}
		p.logger.Info("published", "source", source, "uri", res.URI(p.opts.Bucket), "bytes", res.Bytes)
		results = append(results, res)
	}
	return results, nil
}

func (p *Publisher) publishOne(ctx context.Context, source string) (Result, error) {
	root, err := treefile.Load(source)
	if err != nil {
		return Result{}, err
	}
	html, err := p.renderer.RenderToString(root)
	if err != nil {
		return Result{}, err
	}

	key := p.Key(source)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.opts.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(html)),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"source": filepath.ToSlash(source),
		},
	}
	if p.opts.CacheControl != "" {
		input.CacheControl = aws.String(p.opts.CacheControl)
	}

	out, err := p.client.PutObject(ctx, input)
	if err != nil {
		return Result{}, errors.New(errors.CodePublish).
			WithDetail("s3://%s/%s", p.opts.Bucket, key).
			Wrap(err)
	}

	res := Result{Source: source, Key: key, Bytes: len(html)}
	if out != nil && out.ETag != nil {
		res.ETag = *out.ETag
	}
	return res, nil
}
