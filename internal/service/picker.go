package service

import (
	"math/rand"
	"sync"

	"github.com/bagdasarian/church-roster/internal/domain"
)

// Picker выбирает n различных индексов из [0, size).
// Если n >= size, возвращаются все индексы в случайном порядке
type Picker interface {
	Choose(n, size int) []int
}

type randomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker создает равномерный случайный Picker.
// *rand.Rand не потокобезопасен, поэтому доступ идет под мьютексом
func NewRandomPicker(seed int64) Picker {
	return &randomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPicker) Choose(n, size int) []int {
	if n <= 0 || size <= 0 {
		return []int{}
	}
	if n > size {
		n = size
	}

	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// частичный Fisher-Yates: первые n позиций - равномерная выборка без повторов
	for i := 0; i < n; i++ {
		j := i + p.rng.Intn(size-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:n]
}

// SelectMembers выбирает до maxMembers активных членов
func SelectMembers(picker Picker, members []*domain.Member, maxMembers int) []*domain.Member {
	if maxMembers <= 0 {
		return []*domain.Member{}
	}

	candidates := make([]*domain.Member, 0, len(members))
	for _, member := range members {
		if member.IsActive() {
			candidates = append(candidates, member)
		}
	}

	if len(candidates) == 0 {
		return []*domain.Member{}
	}

	count := len(candidates)
	if count > maxMembers {
		count = maxMembers
	}

	selected := make([]*domain.Member, 0, count)
	for _, idx := range picker.Choose(count, len(candidates)) {
		selected = append(selected, candidates[idx])
	}

	return selected
}

// PickRole выбирает одну роль равновероятно
func PickRole(picker Picker, roles []string) string {
	if len(roles) == 0 {
		return ""
	}
	idx := picker.Choose(1, len(roles))
	if len(idx) == 0 {
		return roles[0]
	}
	return roles[idx[0]]
}
