package storage

import (
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/config"
)

// FTPPhotoStore stores photos on a remote FTP server under a base
// directory. Connections are lazy and re-established after drops.
type FTPPhotoStore struct {
	host     string
	port     string
	user     string
	password string
	baseDir  string

	mu   sync.Mutex
	conn *ftp.ServerConn
}

// NewFTPPhotoStore creates a store from the FTP configuration.
func NewFTPPhotoStore(cfg config.FTP) *FTPPhotoStore {
	return &FTPPhotoStore{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		baseDir:  cfg.BaseDir,
	}
}

func (s *FTPPhotoStore) connect() error {
	if s.conn != nil {
		return nil
	}

	addr := s.host + ":" + s.port
	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("failed to connect to FTP: %w", err)
	}

	if err := conn.Login(s.user, s.password); err != nil {
		conn.Quit()
		return fmt.Errorf("failed to login to FTP: %w", err)
	}

	// Base directory may already exist.
	conn.MakeDir(s.baseDir)

	s.conn = conn
	return nil
}

func (s *FTPPhotoStore) remotePath(p string) string {
	return path.Join(s.baseDir, p)
}

// Save uploads a photo, reconnecting once on a stale connection.
func (s *FTPPhotoStore) Save(p string, data io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.connect(); err != nil {
		return err
	}
	if err := s.conn.Stor(s.remotePath(p), data); err != nil {
		return fmt.Errorf("failed to upload photo: %w", err)
	}
	return nil
}

// Open downloads a photo. The caller must close the returned reader
// before issuing further commands on this store.
func (s *FTPPhotoStore) Open(p string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.connect(); err != nil {
		return nil, err
	}
	resp, err := s.conn.Retr(s.remotePath(p))
	if err != nil {
		return nil, fmt.Errorf("failed to download photo: %w", err)
	}
	return resp, nil
}

// Delete removes a photo from the server.
func (s *FTPPhotoStore) Delete(p string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.connect(); err != nil {
		return err
	}
	if err := s.conn.Delete(s.remotePath(p)); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

// Close terminates the FTP session.
func (s *FTPPhotoStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		err := s.conn.Quit()
		s.conn = nil
		return err
	}
	return nil
}
