package ghupload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v59/github"
	"golang.org/x/oauth2"
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 5 << 20

var (
	ErrNotImage     = errors.New("File must be an image")
	ErrTooLarge     = errors.New("File size must be less than 5MB")
	ErrInvalidURL   = errors.New("Invalid image URL")
	ErrInvalidPath  = errors.New("Invalid folder")
	ErrEmptyContent = errors.New("No file provided")
)

type Config struct {
	AccessToken string
	Owner       string
	Repo        string
	Branch      string
	AuthorName  string
	AuthorEmail string
	// PublicBaseURL overrides the raw.githubusercontent.com prefix.
	PublicBaseURL string
}

// Store keeps images as files of a GitHub repository and hands out their
// raw URLs.
type Store struct {
	client     *github.Client
	owner      string
	repo       string
	branch     string
	author     *github.CommitAuthor
	publicBase string
	now        func() time.Time
}

func NewClient(ctx context.Context, accessToken string) *github.Client {
	var httpClient *http.Client
	if accessToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	return github.NewClient(httpClient)
}

func NewStore(ctx context.Context, cfg Config) *Store {
	return NewStoreWithClient(NewClient(ctx, cfg.AccessToken), cfg)
}

func NewStoreWithClient(client *github.Client, cfg Config) *Store {
	branch := cfg.Branch
	if branch == "" {
		branch = "main"
	}
	base := cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s", cfg.Owner, cfg.Repo, branch)
	}
	return &Store{
		client: client,
		owner:  cfg.Owner,
		repo:   cfg.Repo,
		branch: branch,
		author: &github.CommitAuthor{
			Name:  github.String(cfg.AuthorName),
			Email: github.String(cfg.AuthorEmail),
		},
		publicBase: strings.TrimSuffix(base, "/"),
		now:        time.Now,
	}
}

func (s *Store) PublicBaseURL() string {
	return s.publicBase
}

func CalculateHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Validate applies the type and size limits without touching GitHub.
func Validate(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if size > MaxImageSize {
		return ErrTooLarge
	}
	return nil
}

// Upload stores content under folder and returns its public URL.
func (s *Store) Upload(ctx context.Context, folder, filename, contentType string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyContent
	}
	if err := Validate(contentType, int64(len(content))); err != nil {
		return "", err
	}
	dir, err := cleanFolder(folder)
	if err != nil {
		return "", err
	}

	name := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + CalculateHash(content)[:8] + extension(filename, contentType)
	filePath := dir + "/" + name

	opts := &github.RepositoryContentFileOptions{
		Message:   github.String("upload " + filePath),
		Content:   content,
		Branch:    github.String(s.branch),
		Committer: s.author,
	}
	if _, _, err := s.client.Repositories.CreateFile(ctx, s.owner, s.repo, filePath, opts); err != nil {
		return "", fmt.Errorf("create %s: %w", filePath, err)
	}
	return s.publicBase + "/" + filePath, nil
}

// Delete removes the file behind a URL previously returned by Upload.
func (s *Store) Delete(ctx context.Context, url string) error {
	filePath, ok := strings.CutPrefix(url, s.publicBase+"/")
	if !ok || filePath == "" {
		return ErrInvalidURL
	}

	file, _, _, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, filePath, &github.RepositoryContentGetOptions{Ref: s.branch})
	if err != nil {
		return fmt.Errorf("lookup %s: %w", filePath, err)
	}
	if file == nil || file.SHA == nil {
		return fmt.Errorf("lookup %s: not a file", filePath)
	}

	opts := &github.RepositoryContentFileOptions{
		Message:   github.String("delete " + filePath),
		SHA:       file.SHA,
		Branch:    github.String(s.branch),
		Committer: s.author,
	}
	if _, _, err := s.client.Repositories.DeleteFile(ctx, s.owner, s.repo, filePath, opts); err != nil {
		return fmt.Errorf("delete %s: %w", filePath, err)
	}
	return nil
}

func cleanFolder(folder string) (string, error) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = "brands"
	}
	cleaned := path.Clean(folder)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, "/../") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

func extension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}
	sub := strings.TrimPrefix(contentType, "image/")
	if i := strings.IndexAny(sub, ";+"); i >= 0 {
		sub = sub[:i]
	}
	if sub == "jpeg" {
		sub = "jpg"
	}
	return "." + sub
}
