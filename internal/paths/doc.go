// Provides platform-appropriate paths for the service.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The service name "go_modules" is used as the
// subdirectory under each base path.
package paths
