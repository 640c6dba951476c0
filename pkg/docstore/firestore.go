package docstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Options bound every remote call. Zero values fall back to defaults.
type Options struct {
	Timeout       time.Duration // per-attempt deadline
	RetryAttempts int
	RetryDelay    time.Duration
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Timeout == 0 {
		out.Timeout = 5 * time.Second
	}
	if out.RetryAttempts == 0 {
		out.RetryAttempts = 3
	}
	if out.RetryDelay == 0 {
		out.RetryDelay = 200 * time.Millisecond
	}
	return out
}

// Firestore adapts a *firestore.Client to the Store port, adding a
// per-attempt timeout and a bounded fixed-delay retry around every call.
type Firestore struct {
	client *firestore.Client
	opts   Options
}

func NewFirestore(client *firestore.Client, opts Options) *Firestore {
	return &Firestore{client: client, opts: opts.withDefaults()}
}

func (s *Firestore) Set(ctx context.Context, collection, key string, data Document) error {
	return s.do(ctx, func(ctx context.Context) error {
		_, err := s.client.Collection(collection).Doc(key).Set(ctx, data)
		return err
	})
}

func (s *Firestore) Get(ctx context.Context, collection, key string) (Document, bool, error) {
	var doc Document
	var found bool
	err := s.do(ctx, func(ctx context.Context) error {
		snap, err := s.client.Collection(collection).Doc(key).Get(ctx)
		if status.Code(err) == codes.NotFound {
			return nil
		}
		if err != nil {
			return err
		}
		doc, found = snap.Data(), true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return doc, found, nil
}

func (s *Firestore) Add(ctx context.Context, collection string, data Document) error {
	return s.do(ctx, func(ctx context.Context) error {
		_, _, err := s.client.Collection(collection).Add(ctx, data)
		return err
	})
}

func (s *Firestore) FindByField(ctx context.Context, collection, field string, value any) (Document, error) {
	var doc Document
	err := s.do(ctx, func(ctx context.Context) error {
		iter := s.client.Collection(collection).Where(field, "==", value).Limit(1).Documents(ctx)
		defer iter.Stop()
		snap, err := iter.Next()
		if err == iterator.Done {
			return ErrNoDocument
		}
		if err != nil {
			return err
		}
		doc = snap.Data()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Firestore) Stream(ctx context.Context, collection string) ([]Document, error) {
	var docs []Document
	err := s.do(ctx, func(ctx context.Context) error {
		docs = docs[:0]
		iter := s.client.Collection(collection).Documents(ctx)
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err == iterator.Done {
				return nil
			}
			if err != nil {
				return err
			}
			docs = append(docs, snap.Data())
		}
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// do runs op under the per-attempt timeout, retrying transient failures
// with a fixed delay. ErrNoDocument is a result, not a failure.
func (s *Firestore) do(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < s.opts.RetryAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
		err = op(attemptCtx)
		cancel()
		if err == nil || err == ErrNoDocument {
			return err
		}
		if attempt == s.opts.RetryAttempts-1 {
			break
		}
		select {
		case <-time.After(s.opts.RetryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
