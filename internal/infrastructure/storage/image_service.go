package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/tu-usuario/ecommercebot-api/pkg/config"
)

// presignTTL vigencia de las URLs prefirmadas de subida y lectura.
const presignTTL = 15 * time.Minute

// ImageService genera URLs prefirmadas de S3 para las imágenes de producto.
// El cliente sube y descarga directo contra el bucket; la API nunca
// transporta los bytes.
type ImageService struct {
	cfg config.S3Config
}

// NewImageService construye el servicio de imágenes. Con Bucket vacío el
// servicio queda deshabilitado y toda operación devuelve error.
func NewImageService(cfg config.S3Config) *ImageService {
	return &ImageService{cfg: cfg}
}

// Enabled indica si hay un bucket configurado.
func (s *ImageService) Enabled() bool {
	return s.cfg.Bucket != ""
}

// randomKey genera una key única por fecha: products/2026/8/28/<uuid>.
func randomKey() string {
	d := time.Now()
	return fmt.Sprintf("products/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}

func (s *ImageService) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("configurar cliente S3: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			// MinIO u otro endpoint compatible con S3
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return s3.NewPresignClient(client), nil
}

// PresignUpload devuelve una key nueva y la URL prefirmada de PUT para subirla.
func (s *ImageService) PresignUpload(ctx context.Context) (string, string, error) {
	if !s.Enabled() {
		return "", "", fmt.Errorf("almacenamiento de imágenes no configurado")
	}
	client, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	key := randomKey()
	req, err := client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", fmt.Errorf("prefirmar subida: %w", err)
	}
	return key, req.URL, nil
}

// PresignDownload devuelve la URL prefirmada de GET para una key existente.
func (s *ImageService) PresignDownload(ctx context.Context, key string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("almacenamiento de imágenes no configurado")
	}
	client, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("prefirmar lectura: %w", err)
	}
	return req.URL, nil
}
