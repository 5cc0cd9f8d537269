package sftpclient

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/sftp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHost = "test-host"
	testUser = "test-user"
	testPass = "test-pass"
	testFile = "1700000000.csv"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Host: testHost, User: testUser, Pass: testPass}.withDefaults()

	assert.Equal(t, 22, cfg.Port)
	assert.Equal(t, "/", cfg.RemoteDir)
	assert.Equal(t, 20*time.Second, cfg.DialTimeout)
	assert.Equal(t, "test-host:22", cfg.Addr())
}

func TestHostKeyCallback(t *testing.T) {
	_, err := hostKeyCallback(Config{})
	assert.ErrorIs(t, err, ErrNoHostKeyPolicy)

	cb, err := hostKeyCallback(Config{InsecureIgnoreHostKey: true})
	require.NoError(t, err)
	assert.NotNil(t, cb)

	_, err = hostKeyCallback(Config{KnownHostsFile: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load known_hosts")

	kh := filepath.Join(t.TempDir(), "known_hosts")
	require.NoError(t, os.WriteFile(kh, nil, 0o600))
	cb, err = hostKeyCallback(Config{KnownHostsFile: kh})
	require.NoError(t, err)
	assert.NotNil(t, cb)
}

func writeLocal(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), testFile)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestUploadFileValidation(t *testing.T) {
	ctx := context.Background()

	// reserve a port nobody listens on
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	closedPort := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	testCases := []struct {
		name          string
		cfg           Config
		localPath     string
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			localPath:     testFile,
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name:          "No host key policy",
			cfg:           Config{Host: testHost, User: testUser, Pass: testPass},
			localPath:     testFile,
			errorContains: ErrNoHostKeyPolicy.Error(),
		},
		{
			name:          "Non-existent local file",
			cfg:           Config{Host: testHost, User: testUser, Pass: testPass, InsecureIgnoreHostKey: true},
			localPath:     filepath.Join(t.TempDir(), "non_existent_file.csv"),
			errorContains: "sftp: open local file",
		},
		{
			name: "Nothing listening",
			cfg: Config{
				Host: "127.0.0.1", Port: closedPort, User: testUser, Pass: testPass,
				InsecureIgnoreHostKey: true, DialTimeout: 2 * time.Second,
			},
			localPath:     writeLocal(t, "id\n"),
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := UploadFile(ctx, tc.cfg, tc.localPath, testFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestUploadFileCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Host: "127.0.0.1", Port: 1, User: testUser, Pass: testPass, InsecureIgnoreHostKey: true}
	err := UploadFile(ctx, cfg, writeLocal(t, "id\n"), testFile)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// inMemClient returns an sftp client talking to an in-memory server.
func inMemClient(t *testing.T) *sftp.Client {
	t.Helper()
	c1, c2 := net.Pipe()

	server := sftp.NewRequestServer(c1, sftp.InMemHandler())
	go func() { _ = server.Serve() }()

	client, err := sftp.NewClientPipe(c2, c2)
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client
}

func TestUploadToRemoteDir(t *testing.T) {
	cli := inMemClient(t)
	content := "id,name\nc1,Intro\n"

	require.NoError(t, upload(cli, "/inbound", testFile, strings.NewReader(content)))

	f, err := cli.Open("/inbound/" + testFile)
	require.NoError(t, err)
	defer f.Close()
	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}
