package main

import (
	"fmt"
	"os"
	"syscall"
)

// chrootJail confines the process filesystem view to dir. Must run
// before privileges are dropped; chroot needs root.
func chrootJail(dir string) error {
	if err := syscall.Chroot(dir); err != nil {
		return fmt.Errorf("chroot %s: %w", dir, err)
	}
	if err := syscall.Chdir("/"); err != nil {
		return fmt.Errorf("chdir /: %w", err)
	}
	return nil
}

// dropPrivileges switches to the given uid/gid when running as root.
// Refuses to continue if root privileges survive the switch.
func dropPrivileges(uid, gid int) error {
	if os.Getuid() != 0 {
		return nil
	}
	if err := syscall.Setgid(gid); err != nil {
		return fmt.Errorf("setgid %d: %w", gid, err)
	}
	if err := syscall.Setuid(uid); err != nil {
		return fmt.Errorf("setuid %d: %w", uid, err)
	}
	if syscall.Setuid(0) == nil {
		return fmt.Errorf("still able to regain root after dropping to uid %d", uid)
	}
	return nil
}
