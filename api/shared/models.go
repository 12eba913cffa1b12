/* models.go
 * This file contains the structs that are shared between sub packages
 */

package shared

// User identifies an actor issuing a command. UserId is the stable
// platform-assigned snowflake; Username is display-only.
type User struct {
	UserId   string
	Username string
}
