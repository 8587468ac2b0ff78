// Package zookeeper lists replicas as ephemeral znodes under /{namespace}/replicas. A znode vanishes with the
// session of the replica that created it.
package zookeeper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/jsabin/discovery/adapters/membership"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-zookeeper/zk"
)

// Kind is the membership kind of this package.
const Kind = "zookeeper"

const connectTimeout = 10 * time.Second

func init() {
	membership.RegisterFactory(Kind, func(cfg membership.Config, logger log.Logger) (interfaces.Membership, error) {
		return New(cfg, logger)
	})
}

// Membership is a ZooKeeper backed peer list.
type Membership struct {
	conn   *zk.Conn
	root   string
	self   string
	logger log.Logger
}

var _ interfaces.Membership = (*Membership)(nil)

type zkLogger struct {
	logger log.Logger
}

func (l zkLogger) Printf(format string, args ...any) {
	level.Debug(l.logger).Log("msg", fmt.Sprintf(format, args...))
}

// New connects to cfg.Endpoints. The session timeout is cfg.TTL.
func New(cfg membership.Config, logger log.Logger) (*Membership, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, errors.New("zookeeper membership requires endpoints")
	}
	helpers.StrPanic(cfg.Self, "zookeeper.go: self address is required")
	if cfg.TTL <= 0 {
		cfg.TTL = membership.DefaultTTL
	}

	conn, _, err := zk.Connect(cfg.Endpoints, cfg.TTL, zk.WithLogger(zkLogger{logger: logger}))
	if err != nil {
		return nil, fmt.Errorf("zk connect: %w", err)
	}
	return &Membership{
		conn:   conn,
		root:   path.Join("/", cfg.Namespace, "replicas"),
		self:   cfg.Self,
		logger: logger,
	}, nil
}

// nodeName turns an address into a single znode name.
func nodeName(address string) string {
	return url.PathEscape(address)
}

func (m *Membership) nodePath() string {
	return m.root + "/" + nodeName(m.self)
}

func (m *Membership) waitConnected(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if st := m.conn.State(); st == zk.StateHasSession {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("zk: no session, state=%v: %w", m.conn.State(), ctx.Err())
		case <-ticker.C:
		}
	}
}

func (m *Membership) ensurePath(p string) error {
	cur := ""
	for _, part := range strings.Split(p, "/") {
		if part == "" {
			continue
		}
		cur += "/" + part
		_, err := m.conn.Create(cur, nil, 0, zk.WorldACL(zk.PermAll))
		if err != nil && !errors.Is(err, zk.ErrNodeExists) {
			return fmt.Errorf("create %s: %w", cur, err)
		}
	}
	return nil
}

// Register creates the ephemeral znode of the local replica.
func (m *Membership) Register(ctx context.Context) error {
	if err := m.waitConnected(ctx); err != nil {
		return err
	}
	if err := m.ensurePath(m.root); err != nil {
		return err
	}
	_, err := m.conn.Create(m.nodePath(), []byte(m.self), zk.FlagEphemeral, zk.WorldACL(zk.PermAll))
	if err != nil && !errors.Is(err, zk.ErrNodeExists) {
		return fmt.Errorf("create ephemeral node: %w", err)
	}
	level.Info(m.logger).Log("msg", "registered", "path", m.nodePath())
	return nil
}

// Peers lists the children of the replicas znode.
func (m *Membership) Peers(context.Context) ([]string, error) {
	children, _, err := m.conn.Children(m.root)
	if errors.Is(err, zk.ErrNoNode) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("zk children: %w", err)
	}
	addresses := make([]string, 0, len(children))
	for _, child := range children {
		address, err := url.PathUnescape(child)
		if err != nil {
			level.Warn(m.logger).Log("msg", "skipping malformed znode", "name", child, "err", err)
			continue
		}
		addresses = append(addresses, address)
	}
	return membership.ExcludeSelf(addresses, m.self), nil
}

// Deregister deletes the znode of the local replica.
func (m *Membership) Deregister(context.Context) error {
	err := m.conn.Delete(m.nodePath(), -1)
	if err != nil && !errors.Is(err, zk.ErrNoNode) {
		return fmt.Errorf("delete %s: %w", m.nodePath(), err)
	}
	return nil
}

func (m *Membership) Close() error {
	m.conn.Close()
	return nil
}
