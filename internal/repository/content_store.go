package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// ContentStore persists the site content document.
type ContentStore interface {
	// Load returns the stored document and false when nothing has been saved yet.
	Load(ctx context.Context) (*domain.ContentDocument, bool, error)
	Save(ctx context.Context, doc domain.ContentDocument) error
}

type postgresContentStore struct {
	pool *pgxpool.Pool
}

// NewPostgresContentStore keeps the document as a single JSONB row in site_content.
func NewPostgresContentStore(pool *pgxpool.Pool) ContentStore {
	return &postgresContentStore{pool: pool}
}

func (s *postgresContentStore) Load(ctx context.Context) (*domain.ContentDocument, bool, error) {
	const query = `SELECT document FROM site_content WHERE id = 1`
	var raw []byte
	if err := s.pool.QueryRow(ctx, query).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	doc, err := DecodeContent(raw)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

func (s *postgresContentStore) Save(ctx context.Context, doc domain.ContentDocument) error {
	const query = `
        INSERT INTO site_content (id, document, updated_at)
        VALUES (1, $1::jsonb, NOW())
        ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`
	raw, err := EncodeContent(doc)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, query, string(raw))
	return err
}

type logContentStore struct {
	logger *zap.Logger
}

// NewLogContentStore is used when no database is configured: saves are written to the log only.
func NewLogContentStore(logger *zap.Logger) ContentStore {
	return &logContentStore{logger: logger}
}

func (s *logContentStore) Load(context.Context) (*domain.ContentDocument, bool, error) {
	return nil, false, nil
}

func (s *logContentStore) Save(_ context.Context, doc domain.ContentDocument) error {
	raw, err := EncodeContent(doc)
	if err != nil {
		return err
	}
	s.logger.Info("saving content", zap.ByteString("document", raw))
	return nil
}

type contentRecord struct {
	Hero         heroRecord          `json:"hero"`
	Stats        []statRecord        `json:"stats"`
	About        aboutRecord         `json:"about"`
	Features     []featureRecord     `json:"features"`
	Testimonials []testimonialRecord `json:"testimonials"`
}

type heroRecord struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type aboutRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type statRecord struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type featureRecord struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type testimonialRecord struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Company      string `json:"company"`
	Text         string `json:"text"`
}

// EncodeContent renders the stored JSON form of doc.
func EncodeContent(doc domain.ContentDocument) ([]byte, error) {
	rec := contentRecord{
		Hero:  heroRecord(doc.Hero),
		About: aboutRecord(doc.About),
	}
	for _, s := range doc.Stats {
		rec.Stats = append(rec.Stats, statRecord(s))
	}
	for _, f := range doc.Features {
		rec.Features = append(rec.Features, featureRecord(f))
	}
	for _, t := range doc.Testimonials {
		rec.Testimonials = append(rec.Testimonials, testimonialRecord(t))
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	return raw, nil
}

// DecodeContent parses the stored JSON form.
func DecodeContent(raw []byte) (*domain.ContentDocument, error) {
	var rec contentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	doc := &domain.ContentDocument{
		Hero:  domain.Hero(rec.Hero),
		About: domain.About(rec.About),
	}
	for _, s := range rec.Stats {
		doc.Stats = append(doc.Stats, domain.Stat(s))
	}
	for _, f := range rec.Features {
		doc.Features = append(doc.Features, domain.Feature(f))
	}
	for _, t := range rec.Testimonials {
		doc.Testimonials = append(doc.Testimonials, domain.Testimonial(t))
	}
	return doc, nil
}
