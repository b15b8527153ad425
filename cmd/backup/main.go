// Command backup dumps the Postgres database with pg_dump and uploads the
// dump to an S3-compatible object storage bucket. It runs standalone, outside
// the request path.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"marketstore-be/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func main() {
	cfg := config.LoadConfig()

	path, err := createLocalBackup(cfg)
	if err != nil {
		log.Fatalf("backup failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := uploadToRemote(ctx, cfg, path); err != nil {
		log.Fatalf("upload failed: %v", err)
	}

	log.Printf("backup created and uploaded: %s", path)
}

func createLocalBackup(cfg *config.Config) (string, error) {
	dir := cfg.BackupDir
	if dir == "" {
		dir = "backups"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ts := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_backup_%s.sql", cfg.DBName, ts))

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	cmd := exec.Command("pg_dump",
		"-h", cfg.DBHost,
		"-p", cfg.DBPort,
		"-U", cfg.DBUser,
		cfg.DBName,
	)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PGPASSWORD="+cfg.DBPassword)

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pg_dump: %w", err)
	}

	return path, nil
}

func uploadToRemote(ctx context.Context, cfg *config.Config, path string) error {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return err
	}

	exists, err := client.BucketExists(ctx, cfg.S3Bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.S3Bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	remote := filepath.Base(path)
	_, err = client.FPutObject(ctx, cfg.S3Bucket, remote, path, minio.PutObjectOptions{
		ContentType: "application/sql",
	})
	return err
}
