package membership

import (
	"context"

	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
)

// KindStatic is the kind of a fixed peer list.
const KindStatic = "static"

func init() {
	RegisterFactory(KindStatic, func(cfg Config, _ log.Logger) (interfaces.Membership, error) {
		return NewStatic(cfg.Self, cfg.Peers), nil
	})
}

// Static is a fixed peer list. Registration is a no-op.
type Static struct {
	peers []string
}

var _ interfaces.Membership = (*Static)(nil)

// NewStatic creates a Static membership. peers may contain self.
func NewStatic(self string, peers []string) *Static {
	return &Static{peers: ExcludeSelf(peers, self)}
}

func (s *Static) Register(context.Context) error {
	return nil
}

func (s *Static) Peers(context.Context) ([]string, error) {
	return append([]string(nil), s.peers...), nil
}

func (s *Static) Deregister(context.Context) error {
	return nil
}

func (s *Static) Close() error {
	return nil
}
