// publisher is the AWS v1 S3 adapter for the ports.ForPublishing
// interface: it uploads a fully staged site directory to the bucket
// in the site spec, showing a unified diff of the deployed feed
// before anything is touched.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/gabriel-vasile/mimetype"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"podsite/internal/app/humanreadable"
	"podsite/internal/app/model"
	"podsite/internal/app/ports"
	"podsite/internal/infra/adapters/logger"
)

const feedFile = "feed.rss"

var ErrNoBucket = errors.New("no aws bucket configured in the site spec")

type forPublishing struct {
	site    *model.Site
	asker   ports.ForAsking
	session *session.Session
	s3      *s3.S3
}

// New returns an S3 publisher satisfying the ports.ForPublishing
// port interface, with a session from the profile and region in the
// site spec.
func New(site *model.Site, asker ports.ForAsking) ports.ForPublishing {
	s := session.Must(session.NewSessionWithOptions(session.Options{
		Profile: site.Aws.Profile,
		Config: aws.Config{
			Region: aws.String(site.Aws.Region),
		},
	}))
	return &forPublishing{
		site:    site,
		asker:   asker,
		session: s,
		s3:      s3.New(s),
	}
}

func (p *forPublishing) PublishDir(ctx context.Context, dir string) error {
	l := logger.FromContext(ctx)
	bucket := p.site.Aws.Bucket
	if strings.TrimSpace(bucket) == "" {
		return ErrNoBucket
	}
	var files []string
	err := filepath.WalkDir(dir, func(pth string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, pth)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Show what changed in the feed before touching the bucket.
	if err := p.diff(ctx, bucket, feedFile, filepath.Join(dir, feedFile)); err != nil {
		return err
	}

	if !p.asker.Ask(ctx, "Upload %d files to s3://%s?", len(files), bucket) {
		l.Info("Upload skipped")
		return nil
	}
	uploader := s3manager.NewUploader(p.session)
	for _, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		if err := p.upload(ctx, uploader, bucket, filepath.ToSlash(rel), file); err != nil {
			return err
		}
	}
	l.Info("Site published", "files", len(files), "bucket", bucket)
	return nil
}

func (p *forPublishing) upload(ctx context.Context, uploader *s3manager.Uploader, bucket, key, file string) error {
	l := logger.FromContext(ctx)
	contentType, err := detectContentType(file)
	if err != nil {
		return err
	}
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	l.Info("Uploading to S3", "file", file, "to", "s3://"+path.Join(bucket, key), "size", fi.Size(), "humanSize", humanreadable.IEC(fi.Size()), "contentType", contentType)
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        f,
	})
	if err != nil {
		return err
	}
	l.Debug("Upload succeeded", "location", aws.StringValue(&result.Location))
	return nil
}

// diff downloads key from the bucket and prints a unified diff
// against the freshly rendered file. A missing remote key is fine,
// that is just the first publish.
func (p *forPublishing) diff(ctx context.Context, bucket, key, file string) error {
	l := logger.FromContext(ctx)
	fileContent, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	downloader := s3manager.NewDownloader(p.session)
	buf := aws.NewWriteAtBuffer([]byte{})
	size, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var awsErr awserr.Error
		if errors.As(err, &awsErr) {
			switch awsErr.Code() {
			case "NotFound", "NoSuchKey":
				l.Info("Skipping diff", "path", "s3://"+path.Join(bucket, key), "error", err)
				return nil
			}
		}
		return err
	}
	l.Debug("Buffered deployed feed", "path", "s3://"+path.Join(bucket, key), "bytes", size)
	l.Info("Diff follows", "from", "s3://"+path.Join(bucket, key), "to", file)
	edits := myers.ComputeEdits(span.URIFromPath("s3://"+path.Join(bucket, key)), string(buf.Bytes()), string(fileContent))
	fmt.Println(gotextdiff.ToUnified("s3://"+path.Join(bucket, key), file, string(buf.Bytes()), edits))
	return nil
}

func detectContentType(filename string) (string, error) {
	mimetype.SetLimit(1024 * 1024)
	mimeType, err := mimetype.DetectFile(filename)
	if err != nil {
		return "", err
	}
	return mimeType.String(), nil
}
