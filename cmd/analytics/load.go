package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invensight/backend-go/internal/domain"
)

// loadSnapshot reads the exported record files into a snapshot. Movements
// and transactions are optional; items are not.
func loadSnapshot(itemsPath, movementsPath, transactionsPath string) (domain.Snapshot, error) {
	var snap domain.Snapshot

	if err := readJSONFile(itemsPath, &snap.Items); err != nil {
		return domain.Snapshot{}, fmt.Errorf("load items: %w", err)
	}

	if movementsPath != "" {
		if err := readJSONFile(movementsPath, &snap.Movements); err != nil {
			return domain.Snapshot{}, fmt.Errorf("load movements: %w", err)
		}
	}

	if transactionsPath != "" {
		if err := readJSONFile(transactionsPath, &snap.Transactions); err != nil {
			return domain.Snapshot{}, fmt.Errorf("load transactions: %w", err)
		}
	}

	return snap, nil
}

func readJSONFile(path string, v interface{}) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeResult marshals v as indented JSON to the given file, or stdout when
// no path is set.
func writeResult(path string, v interface{}) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	if path == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	return os.WriteFile(path, payload, 0644)
}
