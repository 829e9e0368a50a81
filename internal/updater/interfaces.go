package updater

import "context"

type PublicIPFetcher interface {
	IP(ctx context.Context) (publicIP string, err error)
}

type UpdateClient interface {
	Update(ctx context.Context, ip string) (err error)
}

type LastIPStore interface {
	LastIP() (ip string, ok bool, err error)
	StoreLastIP(ip string) (err error)
}

type Notifier interface {
	Notify(message string)
}

type DebugLogger interface {
	Debug(s string)
}

type Logger interface {
	DebugLogger
	Info(s string)
	Warn(s string)
	Error(s string)
}
