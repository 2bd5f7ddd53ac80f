package ecs_test

import (
	"fmt"

	"github.com/plus3/skyship/ecs"
)

type GameConfig struct {
	MaxPlayers int
	Difficulty string
}

type GameScore struct {
	Points int
	Level  int
}

// ExampleNewSingleton demonstrates creating and accessing singleton components.
// Singletons are global components not associated with any entity, useful for
// game state, configuration, or other application-wide data.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	// Create singleton with initializer
	config := ecs.NewSingleton[GameConfig](storage, GameConfig{
		MaxPlayers: 4,
		Difficulty: "Normal",
	})

	fmt.Printf("Config: %d players, %s difficulty\n", config.Get().MaxPlayers, config.Get().Difficulty)

	config.Get().Difficulty = "Hard"

	// Another accessor observes the same value.
	sameConfig := ecs.NewSingleton[GameConfig](storage)
	fmt.Printf("Same config: %s difficulty\n", sameConfig.Get().Difficulty)

	// Output:
	// Config: 4 players, Normal difficulty
	// Same config: Hard difficulty
}

// ExampleStorage_AddSingleton shows replacing a resource between frames.
// Accessors keep pointing at the live value.
func ExampleStorage_AddSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	storage.AddSingleton(GameScore{Points: 0, Level: 1})

	score := ecs.NewSingleton[GameScore](storage)
	storage.AddSingleton(GameScore{Points: 250, Level: 3})

	fmt.Printf("Score: %d points, Level %d\n", score.Get().Points, score.Get().Level)

	// Output:
	// Score: 250 points, Level 3
}
