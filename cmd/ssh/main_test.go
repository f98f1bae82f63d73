package main

import (
	"sync"
	"testing"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.update(100+i, 40)
		}(i)
	}
	wg.Wait()

	w, h, err := s.getSize()
	if err != nil || w < 100 || w > 103 || h != 40 {
		t.Errorf("getSize() = %d, %d, %v", w, h, err)
	}
}
