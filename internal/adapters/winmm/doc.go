// Package winmm binds the Windows media control interface (mciSendStringW).
package winmm
