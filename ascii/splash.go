// Package ascii provides the splash banner printed above the report.
package ascii

// Splash returns the "DINFO" banner, one string per line, uncolored.
func Splash() []string {
	return []string{
		` ____  ____  _  _  ____  _____ `,
		`(  _ \(_  _)( \( )( ___)(  _  )`,
		` )(_) )_)(_  )  (  )__)  )(_)( `,
		`(____/(____)(_)\_)(__)  (_____)`,
	}
}
