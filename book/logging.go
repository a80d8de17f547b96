package book

import "github.com/streamingfast/logging"

var zlog, _ = logging.PackageLogger("book", "github.com/streamingfast/mintkey/book")
