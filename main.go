package main

import (
	"github.com/tuannh982/ordered-map/ordmap"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "ordmap"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	inventory := ordmap.FromEntries([]ordmap.Entry[string, int]{
		{Key: "bolts", Value: 40},
		{Key: "nuts", Value: 0},
		{Key: "washers", Value: 120},
	})
	logger.Infof("loaded inventory %s", inventory)

	// updating an existing key keeps its position in the listing
	inventory = inventory.Put("nuts", 75)
	logger.Infof("restocked nuts, order unchanged: %v", inventory.Keys())

	if _, err := inventory.PutNew("bolts", 10); err != nil {
		logger.Warnf("refused duplicate insert: %v", err)
	}

	count, _, inventory := inventory.Pop("washers")
	logger.Infof("shipped all %d washers", count)

	total := ordmap.Reduce(inventory, 0, func(e ordmap.Entry[string, int], acc int) (int, ordmap.Signal) {
		return acc + e.Value, ordmap.Continue
	})
	logger.Infof("%d items across %d lines", total.Acc, inventory.Size())
}
