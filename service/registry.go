package service

import (
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/game"
)

// entry is one registered session. Every field is guarded by the embedded mutex.
type entry struct {
	sync.Mutex

	handle     uuid.UUID
	session    *game.Session
	names      []string
	humans     []bool
	listeners  []interface{}
	generation int64
	touched    time.Time
}

// registry indexes entries by handle on top of a concurrent hashmap.
type registry struct {
	store  func(key string, e *entry)
	load   func(key string) (interface{}, bool)
	remove func(key string)
	each   func(func(e *hashmap.Entry))
}

func newRegistry() *registry {
	sessions := hashmap.New()
	return &registry{
		store:  func(key string, e *entry) { sessions.Set(key, e) },
		load:   func(key string) (interface{}, bool) { return sessions.Get(key) },
		remove: func(key string) { sessions.Del(key) },
		each:   func(fn func(e *hashmap.Entry)) { sessions.Foreach(fn) },
	}
}

func (r *registry) add(e *entry) {
	r.store(e.handle.String(), e)
}

func (r *registry) get(handle uuid.UUID) (*entry, error) {
	if v, ok := r.load(handle.String()); ok {
		return v.(*entry), nil
	}
	return nil, consts.ErrorsSessionInvalid
}

func (r *registry) del(handle uuid.UUID) {
	r.remove(handle.String())
}

func (r *registry) list() []*entry {
	list := make([]*entry, 0)
	r.each(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*entry))
	})
	return list
}
