package object

import "sync"

// intern keeps one shared Go string per distinct name text across the
// process. It's a memory optimization only: Equal still compares names by
// byte content, never by identity.
var (
	internMu   sync.Mutex
	internPool = make(map[string]string)
)

func intern(s string) string {
	internMu.Lock()
	defer internMu.Unlock()
	if v, ok := internPool[s]; ok {
		return v
	}
	internPool[s] = s
	return s
}
