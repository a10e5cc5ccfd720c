package model

import (
	"sync"
	"testing"
)

func TestStateManager_Lifecycle(t *testing.T) {
	sm := NewStateManager()

	if sm.IsFitted() {
		t.Error("New StateManager should not be fitted")
	}

	sm.SetDimensions(3, 10)
	sm.SetFitted()

	if !sm.IsFitted() {
		t.Error("StateManager should be fitted after SetFitted")
	}

	nFeatures, nSamples := sm.GetDimensions()
	if nFeatures != 3 || nSamples != 10 {
		t.Errorf("GetDimensions() = (%d, %d), want (3, 10)", nFeatures, nSamples)
	}

	sm.Reset()

	if sm.IsFitted() {
		t.Error("StateManager should not be fitted after Reset")
	}
	nFeatures, nSamples = sm.GetDimensions()
	if nFeatures != 0 || nSamples != 0 {
		t.Errorf("GetDimensions() after Reset = (%d, %d), want (0, 0)", nFeatures, nSamples)
	}
}

func TestStateManager_ConcurrentAccess(t *testing.T) {
	sm := NewStateManager()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sm.SetFitted()
		}()
		go func() {
			defer wg.Done()
			_ = sm.IsFitted()
		}()
	}
	wg.Wait()

	if !sm.IsFitted() {
		t.Error("StateManager should be fitted after concurrent SetFitted calls")
	}
}

func TestBaseEstimator_Lifecycle(t *testing.T) {
	var be BaseEstimator

	if be.IsFitted() {
		t.Error("Zero-value BaseEstimator should not be fitted")
	}

	be.SetFitted()
	if !be.IsFitted() {
		t.Error("BaseEstimator should be fitted after SetFitted")
	}

	be.Reset()
	if be.IsFitted() {
		t.Error("BaseEstimator should not be fitted after Reset")
	}
}
