package files

import (
	"os/user"
	"strconv"
	"sync"
)

var (
	userCache  sync.Map // uint32 -> string
	groupCache sync.Map // uint32 -> string
)

func lookupUser(uid uint32) string {
	if name, ok := userCache.Load(uid); ok {
		return name.(string)
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if u, err := user.LookupId(id); err == nil {
		name = u.Username
	}
	userCache.Store(uid, name)
	return name
}

func lookupGroup(gid uint32) string {
	if name, ok := groupCache.Load(gid); ok {
		return name.(string)
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if g, err := user.LookupGroupId(id); err == nil {
		name = g.Name
	}
	groupCache.Store(gid, name)
	return name
}
