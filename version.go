package brainus

// Version is the SDK version reported in the User-Agent header.
const Version = "0.3.1"

// userAgent identifies this client to the API.
const userAgent = "brainus-go/" + Version
