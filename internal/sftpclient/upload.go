package sftpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

type Config struct {
	Host      string
	Port      int
	User      string
	Pass      string
	RemoteDir string

	// KnownHostsFile enables host key verification. Without it the host key
	// is only skipped when InsecureIgnoreHostKey is set.
	KnownHostsFile        string
	InsecureIgnoreHostKey bool

	DialTimeout time.Duration
}

var ErrNoHostKeyPolicy = errors.New("sftp: no known_hosts file and insecure host key not allowed")

func (c Config) withDefaults() Config {
	if c.Port <= 0 {
		c.Port = 22
	}
	if c.RemoteDir == "" {
		c.RemoteDir = "/"
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = 20 * time.Second
	}
	return c
}

func (c Config) validate() error {
	if c.Host == "" || c.User == "" || c.Pass == "" {
		return fmt.Errorf("sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	return nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func hostKeyCallback(cfg Config) (ssh.HostKeyCallback, error) {
	if cfg.KnownHostsFile != "" {
		cb, err := knownhosts.New(cfg.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("sftp: load known_hosts: %w", err)
		}
		return cb, nil
	}
	if cfg.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	return nil, ErrNoHostKeyPolicy
}

// UploadFile copies localPath to RemoteDir/remoteFileName, creating the
// remote directory when needed. The local file is opened before dialing.
func UploadFile(ctx context.Context, cfg Config, localPath string, remoteFileName string) error {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}

	cb, err := hostKeyCallback(cfg)
	if err != nil {
		return err
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close()

	sshClient, err := dial(ctx, cfg, cb)
	if err != nil {
		return err
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	return upload(sftpCli, cfg.RemoteDir, remoteFileName, src)
}

func dial(ctx context.Context, cfg Config, cb ssh.HostKeyCallback) (*ssh.Client, error) {
	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         cfg.DialTimeout,
	}

	addr := cfg.Addr()
	d := net.Dialer{Timeout: cfg.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("sftp: dial error: %w", err)
	}

	// the ssh handshake has no ctx of its own
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c, chans, reqs, err := ssh.NewClientConn(conn, addr, sshCfg)
	if err != nil {
		conn.Close()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("sftp: ssh handshake: %w", err)
	}
	return ssh.NewClient(c, chans, reqs), nil
}

func upload(cli *sftp.Client, remoteDir, remoteFileName string, src io.Reader) error {
	if err := cli.MkdirAll(remoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", remoteDir, err)
	}

	remotePath := path.Join(remoteDir, remoteFileName)
	dst, err := cli.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("sftp: upload copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close remote file: %w", err)
	}
	return nil
}
