package main

import (
	"log/slog"
	"os/user"
	"strconv"
)

const unknownName = "Unknown"

// idResolver turns numeric owner and group ids into names.
// Successful lookups are cached for the lifetime of one listing.
type idResolver struct {
	lookupUser  func(uid string) (*user.User, error)
	lookupGroup func(gid string) (*user.Group, error)

	users  map[uint32]string
	groups map[uint32]string
}

func newIDResolver() *idResolver {
	return &idResolver{
		lookupUser:  user.LookupId,
		lookupGroup: user.LookupGroupId,
		users:       make(map[uint32]string),
		groups:      make(map[uint32]string),
	}
}

// names returns the owner and group names for uid and gid.
// A failed owner lookup yields "Unknown". A failed group lookup yields
// "Unknown" for files, directories and symlinks, and "" for special files.
func (r *idResolver) names(uid, gid uint32, kind entryKind) (owner, group string) {
	owner, ok := r.user(uid)
	if !ok {
		owner = unknownName
	}
	group, ok = r.group(gid)
	if !ok {
		if kind.isSpecial() {
			group = ""
		} else {
			group = unknownName
		}
	}
	return owner, group
}

func (r *idResolver) user(uid uint32) (string, bool) {
	if name, ok := r.users[uid]; ok {
		return name, true
	}
	u, err := r.lookupUser(strconv.FormatUint(uint64(uid), 10))
	if err != nil || u.Username == "" {
		slog.Debug("owner lookup failed", "uid", uid, "error", err)
		return "", false
	}
	r.users[uid] = u.Username
	return u.Username, true
}

func (r *idResolver) group(gid uint32) (string, bool) {
	if name, ok := r.groups[gid]; ok {
		return name, true
	}
	g, err := r.lookupGroup(strconv.FormatUint(uint64(gid), 10))
	if err != nil || g.Name == "" {
		slog.Debug("group lookup failed", "gid", gid, "error", err)
		return "", false
	}
	r.groups[gid] = g.Name
	return g.Name, true
}
