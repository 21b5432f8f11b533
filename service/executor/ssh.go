package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/viant/scy/cred/secret"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const sshDialTimeout = 15 * time.Second

// ClientConfig creates an SSH config from the host credentials resource or private key file
func ClientConfig(ctx context.Context, host *Host) (*ssh.ClientConfig, error) {
	if host.Credentials != "" {
		secrets := secret.New()
		generic, err := secrets.GetCredentials(ctx, host.Credentials)
		if err != nil {
			return nil, fmt.Errorf("failed to load credentials %v: %w", host.Credentials, err)
		}
		return generic.SSH.Config(ctx)
	}
	home, homeErr := os.UserHomeDir()
	keyFile := host.KeyFile
	if keyFile == "" {
		if homeErr != nil {
			return nil, fmt.Errorf("failed to locate default private key: %w", homeErr)
		}
		keyFile = filepath.Join(home, ".ssh", "id_rsa")
	}
	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %v: %w", keyFile, err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %v: %w", keyFile, err)
	}
	hostKeyCallback, err := hostKeyCallback(host, home, homeErr)
	if err != nil {
		return nil, err
	}
	user := host.User
	if user == "" {
		user = os.Getenv("USER")
	}
	return &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         sshDialTimeout,
	}, nil
}

func hostKeyCallback(host *Host, home string, homeErr error) (ssh.HostKeyCallback, error) {
	if host.Insecure {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	location := host.KnownHosts
	if location == "" {
		if homeErr != nil {
			return nil, fmt.Errorf("failed to locate known hosts: %w", homeErr)
		}
		location = filepath.Join(home, ".ssh", "known_hosts")
	}
	callback, err := knownhosts.New(location)
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts %v: %w", location, err)
	}
	return callback, nil
}
