// Package services holds the application core.
//
// Services defined in this package:
//   - SessionService: signup, login, logout and profile completion
//   - CommunityService: the seven community collections and their
//     create/transition operations
//   - NoticeService: the read-only notice-board projection
package services
