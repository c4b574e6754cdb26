package apperrors

// Fixed catalog of user-visible failure messages. Handlers never surface
// raw dependency errors; they pick from this list so responses stay
// enumerable and free of internal detail.
const (
	MsgInvalidInput    = "Invalid input parameters"
	MsgPasswordSalt    = "Cannot generate password salt"
	MsgPasswordEncrypt = "Failed to encrypt password"
	MsgNoIdentity      = "Cannot retrieve federated identity"
	MsgDataAccess      = "Error loading user"
	MsgUsernameTaken   = "Username is taken"
	MsgActionMissing   = "Could not find action value in request"
	MsgActionUnknown   = "unsupported action"
	MsgResponseEncode  = "Failed to serialize response"
)
