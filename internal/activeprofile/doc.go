// Package activeprofile persists the ordered list of profiles the tuning
// daemon should apply.
//
// The record is a small text file, one profile name per line, shared with
// the daemon: tuned-adm writes it, the daemon rereads it when told to
// reconfigure. A missing or unreadable record means "no active profile".
package activeprofile
