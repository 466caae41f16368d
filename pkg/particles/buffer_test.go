package particles

import (
	"errors"
	"testing"
)

func TestNewBufferInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if _, err := NewBuffer(capacity); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("NewBuffer(%d): got %v, want ErrInvalidConfiguration", capacity, err)
		}
	}
}

func TestBufferFillToCapacity(t *testing.T) {
	b, err := NewBuffer(8)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	for i := 0; i < 8; i++ {
		idx, err := b.Allocate()
		if err != nil {
			t.Fatalf("Allocate %d: %v", i, err)
		}
		b.At(idx).Lifetime = float64(i)
	}
	if b.Len() != 8 {
		t.Fatalf("Len after fill: got %d, want 8", b.Len())
	}

	if _, err := b.Allocate(); !errors.Is(err, ErrBufferFull) {
		t.Errorf("Allocate on full buffer: got %v, want ErrBufferFull", err)
	}
	if b.Len() != 8 {
		t.Errorf("Len after failed allocate: got %d, want 8", b.Len())
	}
}

func TestBufferReleaseAndReuse(t *testing.T) {
	b, _ := NewBuffer(4)
	for i := 0; i < 4; i++ {
		idx, _ := b.Allocate()
		b.At(idx).Scale = float64(i + 1)
	}

	// Releasing slot 1 swaps the last live particle (scale 4) into it.
	b.Release(1)
	if b.Len() != 3 {
		t.Fatalf("Len after release: got %d, want 3", b.Len())
	}
	if got := b.At(1).Scale; got != 4 {
		t.Errorf("slot 1 after swap-compaction: scale %v, want 4", got)
	}

	// The freed slot is immediately reusable and the capacity never grows.
	if _, err := b.Allocate(); err != nil {
		t.Fatalf("Allocate after release: %v", err)
	}
	if b.Cap() != 4 {
		t.Errorf("Cap changed: got %d, want 4", b.Cap())
	}
	if _, err := b.Allocate(); !errors.Is(err, ErrBufferFull) {
		t.Errorf("refilled buffer should be full, got %v", err)
	}
}

func TestBufferReleaseOutOfRange(t *testing.T) {
	b, _ := NewBuffer(2)
	b.Allocate()

	b.Release(-1)
	b.Release(5)
	if b.Len() != 1 {
		t.Errorf("out-of-range release changed Len: got %d, want 1", b.Len())
	}
}

func TestBufferAllocateResetsSlot(t *testing.T) {
	b, _ := NewBuffer(1)
	idx, _ := b.Allocate()
	b.At(idx).Age = 99
	b.Release(idx)

	idx, _ = b.Allocate()
	if got := b.At(idx).Age; got != 0 {
		t.Errorf("reused slot not reset: Age %v, want 0", got)
	}
}

func TestBufferForEachLiveVisitsExactlyLive(t *testing.T) {
	b, _ := NewBuffer(10)
	for i := 0; i < 6; i++ {
		idx, _ := b.Allocate()
		b.At(idx).Scale = 1
	}
	b.Release(0)
	b.Release(0)

	visited := 0
	b.ForEachLive(func(p *Particle) {
		visited++
		if p.Scale != 1 {
			t.Errorf("visited a slot that was never initialized")
		}
	})
	if visited != 4 {
		t.Errorf("ForEachLive visited %d slots, want 4", visited)
	}
}

func TestViewAliasesBufferStorage(t *testing.T) {
	b, _ := NewBuffer(3)
	b.Allocate()
	b.Allocate()

	view := b.LiveView()
	if view.Len() != 2 {
		t.Fatalf("view Len: got %d, want 2", view.Len())
	}

	view.At(0).Scale = 7
	if got := b.At(0).Scale; got != 7 {
		t.Errorf("write through view not visible in buffer: got %v, want 7", got)
	}

	count := 0
	view.Each(func(p *Particle) { count++ })
	if count != 2 {
		t.Errorf("view Each visited %d, want 2", count)
	}
}
