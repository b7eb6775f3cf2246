package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/tg_store/pkg/metrics"
)

// evictLRU — удаляет наименее используемую запись.
func (s *Store) evictLRU() {
	if back := s.ll.Back(); back != nil {
		s.removeElement(back)
		metrics.KVStoreOps.WithLabelValues(backendName, "evict", "ok").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (s *Store) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(s.index, ent.key)
	}
	s.ll.Remove(elem)
}

// sweepExpired — удаляет все истёкшие записи. TTL у записей разный,
// поэтому хвост списка не упорядочен по сроку и проходится целиком.
func (s *Store) sweepExpired(now time.Time) {
	for elem := s.ll.Back(); elem != nil; {
		prev := elem.Prev()
		if ent, ok := elem.Value.(*entry); ok && isExpired(ent, now) {
			s.removeElement(elem)
			metrics.KVStoreOps.WithLabelValues(backendName, "sweep", "expired").Inc()
		}
		elem = prev
	}
}

func isExpired(ent *entry, now time.Time) bool {
	if ent.expiresAt.IsZero() {
		return false
	}
	return !now.Before(ent.expiresAt)
}

func expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// remaining — остаток жизни записи; 0 для бессрочной.
func remaining(ent *entry, now time.Time) time.Duration {
	if ent.expiresAt.IsZero() {
		return 0
	}
	return ent.expiresAt.Sub(now)
}

// cloneBytes — копия значения, чтобы внешние изменения не затрагивали кэш.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
