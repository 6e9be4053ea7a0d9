package playerlock

import "sync"

// Arena hands out one mutex per player id so updates for the same chat are
// processed strictly in order while different chats proceed in parallel.
type Arena struct {
	locks sync.Map // int64 -> *sync.Mutex
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) Lock(playerID int64) {
	mu, _ := a.locks.LoadOrStore(playerID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (a *Arena) Unlock(playerID int64) {
	mu, ok := a.locks.Load(playerID)
	if !ok {
		return
	}
	mu.(*sync.Mutex).Unlock()
}
