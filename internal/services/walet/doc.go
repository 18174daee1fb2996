/*
Package walet implements the rules of the walet REST resource.

A walet is a login/password pair attached to a client. The service sits
between the HTTP handlers and the repository and enforces identifier
consistency only:

  - Create rejects a body that already carries an id (idexists).
  - Update and PartialUpdate reject a body without id (idnull), a body id
    that differs from the path id (idinvalid) and an id that is not
    stored (idnotfound).
  - PartialUpdate overwrites only the fields present in the body.
  - Delete of a missing id succeeds.

Usage:

	svc := walet.NewService(repo, notifier, walet.WaletConfig{}, &walet.NoopMetricsCollector{}, logger)
	created, err := svc.Create(ctx, &models.Walet{Login: models.String("john")})

Passwords are stored as sent unless WaletConfig.HashPasswords is set, in
which case they are bcrypt-hashed before every write.
*/
package walet
