//go:build !android

package utils

// EnsureStorageDir 在非 Android 平台上无需处理，gdata 会自行创建目录
func EnsureStorageDir() error {
	return nil
}
