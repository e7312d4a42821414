package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"smwu-sales-api/pkg/models"

	"github.com/couchbase/gocb/v2"
)

// ErrDocumentAbsent is returned by GetByKey when no document exists for a key.
// Callers that only care about presence can treat transport errors the same
// way; callers that need the distinction can inspect the wrapped error.
var ErrDocumentAbsent = errors.New("document absent")

// DocumentGetter is the read contract the aggregation engine depends on.
type DocumentGetter interface {
	GetByKey(ctx context.Context, districtCode, quarter, industryCode string) (*models.RawSalesRecord, error)
}

// StoreService wraps a single Couchbase connection. It is constructed once at
// process start and shared by all requests; a failed connection is fatal at
// startup, never handled per-request.
type StoreService struct {
	cluster    *gocb.Cluster
	collection *gocb.Collection
}

// NewStoreService connects to the cluster and waits for the bucket to be
// ready. It returns an error if the store is unreachable.
func NewStoreService(connStr, username, password, bucketName string) (*StoreService, error) {
	cluster, err := gocb.Connect(connStr, gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{
			Username: username,
			Password: password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("couchbase connect failed: %w", err)
	}

	bucket := cluster.Bucket(bucketName)
	if err := bucket.WaitUntilReady(10*time.Second, nil); err != nil {
		return nil, fmt.Errorf("couchbase bucket %q not ready: %w", bucketName, err)
	}

	log.Printf("Connected to Couchbase bucket %q", bucketName)
	return &StoreService{
		cluster:    cluster,
		collection: bucket.DefaultCollection(),
	}, nil
}

// ComposeKey builds the document key for one (district, quarter, industry)
// triplet. The inverse is never needed: classification on read uses the
// record's embedded svc_induty_cd, not the key string.
func ComposeKey(districtCode, quarter, industryCode string) string {
	return fmt.Sprintf("sales::%s::%s::%s", districtCode, quarter, industryCode)
}

// GetByKey fetches one raw sales record. A missing document is reported as
// ErrDocumentAbsent; transport failures are returned as-is so the caller
// decides whether to collapse them into absence.
func (s *StoreService) GetByKey(ctx context.Context, districtCode, quarter, industryCode string) (*models.RawSalesRecord, error) {
	docID := ComposeKey(districtCode, quarter, industryCode)

	result, err := s.collection.Get(docID, &gocb.GetOptions{
		Context: ctx,
		Timeout: 5 * time.Second,
	})
	if err != nil {
		if errors.Is(err, gocb.ErrDocumentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentAbsent, docID)
		}
		return nil, fmt.Errorf("get %s: %w", docID, err)
	}

	var record models.RawSalesRecord
	if err := result.Content(&record); err != nil {
		return nil, fmt.Errorf("decode %s: %w", docID, err)
	}
	return &record, nil
}

// Upsert creates or replaces a document. Not used on the read path; the seed
// tooling writes through it.
func (s *StoreService) Upsert(ctx context.Context, key string, doc interface{}) error {
	_, err := s.collection.Upsert(key, doc, &gocb.UpsertOptions{
		Context: ctx,
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Query executes a N1QL statement and collects all rows. The statement format
// is owned by the store and opaque here.
func (s *StoreService) Query(ctx context.Context, statement string) ([]map[string]interface{}, error) {
	result, err := s.cluster.Query(statement, &gocb.QueryOptions{
		Context: ctx,
		Adhoc:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer result.Close()

	var rows []map[string]interface{}
	for result.Next() {
		var row map[string]interface{}
		if err := result.Row(&row); err != nil {
			log.Printf("Skipping unreadable query row: %v", err)
			continue
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("query iteration failed: %w", err)
	}
	return rows, nil
}
