// Package grade scores a scanned, filled-in worksheet against its answer key.
//
// A scan is loaded with [LoadScan], which accepts PNG, JPEG, TIFF and BMP
// images and hands the OCR engine a PNG. The recognized text is parsed into
// numbered responses by [ParseResponses] and compared with the key by
// [Grade]:
//
//	client, err := ocr.NewAnswerReader()
//	if err != nil {
//	    // OCR not compiled in
//	}
//	defer client.Close()
//	report, err := grade.Scan(ctx, "week1.key.yaml", "week1-scan.tiff", client)
//	fmt.Println(report.Score())
package grade
