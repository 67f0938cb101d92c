package event

import "testing"

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewBus()
	received := 0
	bus.Subscribe(BattleStarted, func(e Event) {
		received++
		be, ok := e.(*BattleEvent)
		if !ok {
			t.Fatalf("expected *BattleEvent, got %T", e)
		}
		if be.Attacker != "Empire" || be.Defender != "Rebel" {
			t.Errorf("unexpected participants %s vs %s", be.Attacker, be.Defender)
		}
	})

	bus.Publish(NewBattleEvent(BattleStarted, nil, 1, 2, "Empire", "Rebel", false))
	if received != 1 {
		t.Errorf("handler called %d times, want 1", received)
	}
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()
	// Must not panic or block.
	bus.Publish(&BaseEvent{EventType: SessionReset})
}

func TestBus_HandlersRunInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(VictoryDeclared, func(Event) { order = append(order, i) })
	}
	bus.Publish(NewVictoryEvent(nil, "Rebel", 0.8))
	for i, got := range order {
		if got != i {
			t.Fatalf("handler order = %v", order)
		}
	}
}

func TestBus_TypeFiltering(t *testing.T) {
	bus := NewBus()
	called := false
	bus.Subscribe(FleetArrived, func(Event) { called = true })
	bus.Publish(NewFleetEvent(FleetOrderIssued, nil, 1, 2, "Rebel"))
	if called {
		t.Error("handler for FleetArrived received a FleetOrderIssued event")
	}
}
