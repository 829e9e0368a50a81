package config

import (
	"os"
	"path/filepath"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	// LogFile is the path of the agent log file, rotated to its
	// .old sibling when it grows above LogMaxSize.
	LogFile *string
	// LastIPFile is the path of the file holding the last IP
	// successfully applied at the remote service.
	LastIPFile *string
	// LockFile is the path of the advisory lock file preventing
	// overlapping invocations.
	LockFile *string
	// LogMaxSize is the log rotation threshold in bytes.
	LogMaxSize int64
}

func (p *Paths) setDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	p.LogFile = gosettings.DefaultPointer(p.LogFile,
		filepath.Join(home, ".volary_ddns_update.log"))
	p.LastIPFile = gosettings.DefaultPointer(p.LastIPFile,
		filepath.Join(home, ".volary_ddns_last_ip"))
	p.LockFile = gosettings.DefaultPointer(p.LockFile,
		filepath.Join(home, ".volary_ddns.lock"))
	const defaultLogMaxSize = 1048576 // 1 MiB
	p.LogMaxSize = gosettings.DefaultComparable(p.LogMaxSize, defaultLogMaxSize)
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Log file: %s (rotated above %d bytes)", *p.LogFile, p.LogMaxSize)
	node.Appendf("Last IP file: %s", *p.LastIPFile)
	node.Appendf("Lock file: %s", *p.LockFile)
	return node
}

func (p *Paths) read(r *reader.Reader) (err error) {
	p.LogFile = r.Get("LOG_FILE", reader.ForceLowercase(false))
	p.LastIPFile = r.Get("LASTIP_FILE", reader.ForceLowercase(false))
	p.LockFile = r.Get("LOCK_FILE", reader.ForceLowercase(false))

	logMaxSize, err := r.IntPtr("LOG_MAX_SIZE")
	if err != nil {
		return err
	} else if logMaxSize != nil {
		p.LogMaxSize = int64(*logMaxSize)
	}
	return nil
}
