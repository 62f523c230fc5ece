package main

import (
	"github.com/tuannh982/projected-map/projmap"

	log "github.com/sirupsen/logrus"
)

type User struct {
	Name   string
	Height int
	Weight int
}

func main() {
	logger := log.WithFields(log.Fields{"demo": "projected-map"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel
	users := projmap.NewMap(func(u *User) string {
		return u.Name
	})
	_, _ = users.Put(&User{Name: "alice", Height: 170, Weight: 60})
	_, _ = users.Put(&User{Name: "bob", Height: 180, Weight: 80})
	prev, replaced := users.Put(&User{Name: "alice", Height: 171, Weight: 61})
	if replaced {
		logger.Info("replaced ", prev.Name, " height=", prev.Height)
	}
	if u, ok := users.Get("bob"); ok {
		logger.Info("found ", u.Name, " height=", u.Height)
	}
	users.Range(func(u *User) bool {
		logger.Info("entry ", u.Name, " weight=", u.Weight)
		return true
	})
	if u, ok := users.Delete("alice"); ok {
		logger.Info("removed ", u.Name)
	}
	logger.Info("size=", users.Size())
}
