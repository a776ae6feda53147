package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/synthd/synthd/pkg/entity"
)

// Bucket names, one per entity kind.
var (
	bucketUsers    = []byte(entity.KindUser)
	bucketProducts = []byte(entity.KindProduct)
	bucketOrders   = []byte(entity.KindOrder)
)

// Bolt is a durable Store backed by a bbolt database file. Each entity kind
// lives in its own bucket; ids come from the bucket sequence, so they are
// unique and monotonic per kind. Every batch insert runs in a single
// read-write transaction, which makes it atomic.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a bbolt-backed store at the given path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketUsers, bucketProducts, bucketOrders} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &Bolt{db: db}, nil
}

// InsertUsers commits a batch of users in one transaction.
func (s *Bolt) InsertUsers(users []*entity.User) ([]int64, error) {
	ids := make([]int64, 0, len(users))
	err := s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketUsers)
		for _, u := range users {
			seq, err := bkt.NextSequence()
			if err != nil {
				return err
			}
			u.ID = int64(seq)
			if err := putRecord(bkt, u.ID, u); err != nil {
				return err
			}
			ids = append(ids, u.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert %s batch: %w", entity.KindUser, err)
	}
	return ids, nil
}

// InsertProducts commits a batch of products in one transaction.
func (s *Bolt) InsertProducts(products []*entity.Product) ([]int64, error) {
	ids := make([]int64, 0, len(products))
	err := s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketProducts)
		for _, p := range products {
			seq, err := bkt.NextSequence()
			if err != nil {
				return err
			}
			p.ID = int64(seq)
			if err := putRecord(bkt, p.ID, p); err != nil {
				return err
			}
			ids = append(ids, p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert %s batch: %w", entity.KindProduct, err)
	}
	return ids, nil
}

// InsertOrders commits a batch of orders in one transaction.
func (s *Bolt) InsertOrders(orders []*entity.Order) ([]int64, error) {
	ids := make([]int64, 0, len(orders))
	err := s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketOrders)
		for _, o := range orders {
			seq, err := bkt.NextSequence()
			if err != nil {
				return err
			}
			o.ID = int64(seq)
			if err := putRecord(bkt, o.ID, o); err != nil {
				return err
			}
			ids = append(ids, o.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert %s batch: %w", entity.KindOrder, err)
	}
	return ids, nil
}

// Users returns all users ordered by id.
func (s *Bolt) Users() ([]*entity.User, error) {
	result := make([]*entity.User, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		// Keys are big-endian ids, so iteration order is id order.
		return tx.Bucket(bucketUsers).ForEach(func(k, v []byte) error {
			var u entity.User
			if err := json.Unmarshal(v, &u); err != nil {
				return err
			}
			result = append(result, &u)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", entity.KindUser, err)
	}
	return result, nil
}

// Products returns all products ordered by id.
func (s *Bolt) Products() ([]*entity.Product, error) {
	result := make([]*entity.Product, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProducts).ForEach(func(k, v []byte) error {
			var p entity.Product
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			result = append(result, &p)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", entity.KindProduct, err)
	}
	return result, nil
}

// Orders returns all orders ordered by id.
func (s *Bolt) Orders() ([]*entity.Order, error) {
	result := make([]*entity.Order, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketOrders).ForEach(func(k, v []byte) error {
			var o entity.Order
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			result = append(result, &o)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", entity.KindOrder, err)
	}
	return result, nil
}

// UserByID returns a single user, or a NotFoundError.
func (s *Bolt) UserByID(id int64) (*entity.User, error) {
	var u entity.User
	if err := s.getRecord(bucketUsers, entity.KindUser, id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProductByID returns a single product, or a NotFoundError.
func (s *Bolt) ProductByID(id int64) (*entity.Product, error) {
	var p entity.Product
	if err := s.getRecord(bucketProducts, entity.KindProduct, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// OrderByID returns a single order, or a NotFoundError.
func (s *Bolt) OrderByID(id int64) (*entity.Order, error) {
	var o entity.Order
	if err := s.getRecord(bucketOrders, entity.KindOrder, id, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Close closes the underlying database.
func (s *Bolt) Close() error {
	return s.db.Close()
}

func (s *Bolt) getRecord(bucket []byte, kind entity.Kind, id int64, dst any) error {
	return s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get(itob(id))
		if v == nil {
			return &NotFoundError{Kind: kind, ID: id}
		}
		return json.Unmarshal(v, dst)
	})
}

func putRecord(bkt *bolt.Bucket, id int64, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return bkt.Put(itob(id), data)
}

// itob encodes an id as a big-endian key so bucket order matches id order.
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// Ensure Bolt implements Store.
var _ Store = (*Bolt)(nil)
