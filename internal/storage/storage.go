package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// BlobStore stores recording audio
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*UploadResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Info() StorageInfo
}

// UploadResult describes a stored object
type UploadResult struct {
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
	Pathname    string `json:"pathname"`
	Size        int64  `json:"size"`
}

// StorageInfo describes where objects are stored
type StorageInfo struct {
	Provider   string    `json:"provider"`
	Region     string    `json:"region"`
	UploadedAt time.Time `json:"uploaded_at"`
}

const (
	defaultAudioExtension = "mp3"
	randomSuffixLength    = 13
	randomAlphabet        = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// AudioObjectKey builds recordings/<org>/audio_<unixms>_<random>.<ext>.
// The extension is taken from filename and defaults to mp3.
func AudioObjectKey(organizationID, filename string, now time.Time) string {
	return fmt.Sprintf("recordings/%s/audio_%d_%s.%s",
		organizationID, now.UnixMilli(), randomSuffix(), audioExtension(filename))
}

func audioExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return defaultAudioExtension
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, r := range ext {
		if !strings.ContainsRune(randomAlphabet, r) {
			return defaultAudioExtension
		}
	}
	return ext
}

func randomSuffix() string {
	b := make([]byte, randomSuffixLength)
	for i := range b {
		b[i] = randomAlphabet[rand.IntN(len(randomAlphabet))]
	}
	return string(b)
}

// ShareLink builds <base>/shared/<id>?blob=<escaped blob url>
func ShareLink(baseURL, recordingID, blobURL string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(blobURL), "+", "%20")
	return fmt.Sprintf("%s/shared/%s?blob=%s", strings.TrimRight(baseURL, "/"), recordingID, escaped)
}
